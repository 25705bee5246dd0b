/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package corpus holds the fixed data every fresh model is pretrained on
// before it ever sees real input: an English prose corpus and a baseline
// unigram character-frequency table. Both are opaque byte/data sources as
// far as the statistical core is concerned; embedding them here keeps that
// core free of any particular training text.
package corpus

// Pretrain is the fixed English-prose corpus every new mixer/PPM/LZP
// triple is trained on before compressing or decompressing real data, so
// an encoder and a decoder that agree on this text start from identical
// state.
const Pretrain = `The history of human civilization is a remarkable story that spans thousands of years. From the earliest settlements in the fertile valleys of ancient Mesopotamia to the modern cities of today, people have continuously worked to improve their lives and understand the world around them. This journey has been marked by great achievements in science, technology, art, and philosophy.

Language and writing are among the most important inventions in human history. The development of written communication allowed knowledge to be preserved and transmitted across generations. Ancient civilizations such as Egypt, Greece, and China each developed their own writing systems, which served as the foundation for their cultural and intellectual achievements. The alphabet, which originated in the ancient Near East, eventually spread throughout the world and became the basis for many modern writing systems.

The printing press, invented by Johannes Gutenberg in the fifteenth century, was a transformative technology that changed the course of history. Before its invention, books had to be copied by hand, making them expensive and rare. The printing press made it possible to produce books quickly and cheaply, which led to a dramatic increase in literacy and the spread of new ideas. This technology played a crucial role in the Renaissance, the Reformation, and the Scientific Revolution.

Science has always been driven by curiosity and the desire to understand natural phenomena. The ancient Greeks made significant contributions to mathematics, astronomy, and philosophy. During the Islamic Golden Age, scholars preserved and expanded upon Greek knowledge, making important advances in algebra, optics, and medicine. The European Scientific Revolution of the seventeenth century brought about a fundamental change in how people understood the natural world, with figures like Galileo, Newton, and Kepler establishing the foundations of modern physics and astronomy.

The Industrial Revolution, which began in Britain in the late eighteenth century, transformed society in profound ways. New machines and manufacturing processes led to the growth of factories and cities, changing the way people lived and worked. Steam power, and later electricity, provided the energy needed to drive this transformation. The resulting increase in productivity brought both prosperity and new challenges, including pollution, urban poverty, and labor exploitation.

In the twentieth century, technological progress accelerated at an unprecedented pace. The invention of the airplane, the automobile, and the computer changed the way people traveled, communicated, and processed information. The development of nuclear energy presented both great promise and great danger. Medical advances, including antibiotics, vaccines, and surgical techniques, dramatically improved human health and increased life expectancy.

The digital revolution of the late twentieth and early twenty-first centuries has been perhaps the most transformative period in human history. The internet has connected billions of people around the world, enabling instant communication and access to vast amounts of information. Social media, smartphones, and cloud computing have changed how we work, learn, and interact with one another. Artificial intelligence and machine learning are now being applied to a wide range of problems, from medical diagnosis to climate modeling.

Education remains one of the most important factors in individual and societal development. Schools and universities provide the knowledge and skills that people need to participate fully in modern society. The study of literature, history, science, and mathematics helps develop critical thinking and creativity. Access to quality education is widely recognized as a fundamental human right and a key driver of economic growth and social progress.

The natural environment is essential to human survival and well-being. Forests, oceans, and other ecosystems provide the air we breathe, the water we drink, and the food we eat. However, human activities such as deforestation, pollution, and the burning of fossil fuels are causing significant damage to the environment. Climate change, in particular, poses a serious threat to communities and ecosystems around the world. Addressing these challenges will require cooperation and innovation on a global scale.

Art and culture enrich our lives and help us understand what it means to be human. Music, painting, literature, and film provide outlets for creative expression and emotional exploration. They also serve as a mirror for society, reflecting its values, struggles, and aspirations. Throughout history, artists have challenged conventions and pushed boundaries, often at great personal risk. The relationship between art and technology continues to evolve, with digital tools opening new possibilities for creative expression.

Looking to the future, humanity faces both tremendous opportunities and significant challenges. Advances in renewable energy, biotechnology, and space exploration offer the potential for a better world. At the same time, issues such as inequality, political instability, and the ethical implications of new technologies demand careful thought and responsible action. The decisions we make in the coming years will shape the future for generations to come, making it essential that we approach these questions with wisdom, compassion, and a commitment to the common good.

The history of artificial intelligence is one of the most fascinating chapters in the development of modern technology. From ancient myths about artificial beings endowed with intelligence or consciousness by skilled craftsmen to the sophisticated machine learning systems of today, the dream of creating thinking machines has captivated human imagination for centuries. The seeds of modern AI were planted by philosophers who attempted to describe the process of human thinking as the mechanical manipulation of symbols and logical operations.

The field of AI research was officially founded at a workshop held on the campus of Dartmouth College during the summer of 1956. The attendees at this historic gathering became the leaders of AI research for decades to come. Many of them predicted that a machine as intelligent as a human being would exist in no more than a generation, and they were given millions of dollars to make this vision come true. These early researchers were filled with optimism about the potential of artificial intelligence to transform society and solve complex problems.

However, it eventually became obvious that commercial developers and researchers had grossly underestimated the difficulty of the project. Creating truly intelligent machines proved to be far more challenging than anyone had anticipated. In 1974, in response to the criticism of James Lighthill and ongoing pressure from the United States Congress, the American and British governments cut off exploratory research in artificial intelligence. The next few years would later be called an AI winter, a period of reduced funding and diminished interest in the field.

In the early 1980s, AI research was revived by the commercial success of expert systems, a form of AI program that simulated the knowledge and analytical skills of human experts. These systems were designed to make decisions and solve problems in specific domains. By 1985, the market for AI had reached over a billion dollars. At the same time, Japan's fifth generation computer project inspired the American and British governments to restore funding for academic research in artificial intelligence.

The collapse of the Lisp Machine market in 1987 marked the beginning of a second, longer lasting AI winter. Research funding dried up and many companies that had invested heavily in artificial intelligence technology went bankrupt or abandoned their AI divisions. Despite this setback, research continued through the AI winters, and many fundamental discoveries were made during this period that would prove crucial for future breakthroughs.

The invention of the programmable digital computer in the 1940s was a pivotal moment in the history of artificial intelligence. This machine, based on the abstract essence of mathematical reasoning, provided the hardware foundation needed to implement AI algorithms. The ideas behind this device inspired a handful of scientists to begin seriously discussing the possibility of building an electronic brain that could think and learn like a human being.

Artificial neural networks, inspired by the structure of biological brains, became a major area of research in artificial intelligence. Deep learning, a technique based on neural networks with many layers, became much more prominent after a landmark paper in 2012. This paper demonstrated that deep neural networks could achieve remarkable results on image recognition tasks, surpassing traditional methods by a wide margin.

The development of large language models in the 2020s represented a paradigm shift in the field of artificial intelligence. These models demonstrated an unprecedented ability to generate human-like text, translate languages, write different kinds of creative content, and answer questions in an informative way. The rapid progress in this area surprised many researchers and led to renewed interest and investment in artificial intelligence research worldwide.

Architecture reflects the values and aspirations of the cultures that produce it. From ancient temples and cathedrals to modern skyscrapers and sustainable buildings, the built environment shapes our daily experiences in profound ways. Engineers and architects work together to create structures that are both functional and beautiful, balancing practical requirements with aesthetic vision.

The exploration of space represents one of humanity's greatest adventures. Since the first satellite was launched into orbit, scientists and astronauts have pushed the boundaries of what is possible. Missions to the moon, Mars, and beyond have expanded our understanding of the cosmos and inspired generations of young people to pursue careers in science and engineering. The development of reusable rockets and international cooperation in space research suggest that the next chapter of exploration may be even more exciting than the last.

Language is one of the most distinctive features of our species. The ability to communicate complex ideas through spoken and written words has enabled humans to cooperate on a scale unmatched by any other creature. Linguists study the structure and evolution of languages, revealing fascinating patterns that connect seemingly unrelated tongues. The study of grammar, syntax, and semantics helps us understand not just how we speak, but how we think.

In the world of typography and graphic design, the visual presentation of text plays a crucial role in communication. Typefaces convey mood and meaning beyond the words themselves. Serif fonts like Times New Roman suggest tradition and authority, while sans-serif fonts like Helvetica feel modern and clean. The choice of font, spacing, and layout can significantly affect how a message is received and understood by its audience. Designers must consider readability, hierarchy, and visual harmony when creating documents, websites, and other printed or digital materials.

The development of the English language has been shaped by centuries of contact with other cultures and languages. Old English, heavily influenced by Germanic tongues, evolved through the Norman Conquest into Middle English, which incorporated many French and Latin words. The Great Vowel Shift and the standardization brought about by the printing press helped shape Modern English. Today, English is spoken by over a billion people worldwide and serves as a global lingua franca for business, science, and diplomacy.

Mathematics provides the universal language of science and engineering. From basic arithmetic to advanced calculus, mathematical tools enable us to model and predict natural phenomena with remarkable precision. The discovery of fundamental mathematical principles, such as the Pythagorean theorem, Euler's identity, and the laws of probability, has had profound implications for fields ranging from physics to economics. Computer science, in particular, relies heavily on discrete mathematics, algorithms, and information theory to solve complex computational problems.

Philosophy examines the fundamental questions of existence, knowledge, ethics, and the nature of reality. From the dialogues of Plato and Aristotle to the existentialism of Sartre and Camus, philosophers have grappled with the deepest questions that confront humanity. Their ideas have shaped political systems, scientific methods, and moral frameworks that continue to influence how we understand the world. The pursuit of wisdom remains as relevant today as it was in ancient times, providing a foundation for thoughtful engagement with the complex issues of modern life.
`
